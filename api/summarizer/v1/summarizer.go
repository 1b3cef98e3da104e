package v1

import "github.com/gogf/gf/v2/frame/g"

// 查询摘要后端（Ollama）可用性
type StatusReq struct {
	g.Meta `path:"/status" method:"get" summary:"查询摘要服务状态"`
}
type StatusRes struct {
	Available bool     `json:"available" dc:"Ollama 服务是否可用"`
	Models    []string `json:"models" dc:"已安装的模型列表"`
}

package v1

import (
	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gtime"
)

// TranscriptMeta 转录记录的元数据，列表接口返回
type TranscriptMeta struct {
	Id               string      `json:"id" dc:"记录ID"`
	Title            string      `json:"title" dc:"标题"`
	OriginalFilename string      `json:"originalFilename" dc:"原始文件名"`
	SummaryStyle     string      `json:"summaryStyle" dc:"摘要风格 meeting/article/brief"`
	Status           string      `json:"status" dc:"任务状态 pending/processing/completed/failed"`
	Language         string      `json:"language" dc:"检测到的语言"`
	AudioDuration    float64     `json:"audioDuration" dc:"音频时长（秒）"`
	CreatedAt        *gtime.Time `json:"createdAt" dc:"创建时间"`
	UpdatedAt        *gtime.Time `json:"updatedAt" dc:"更新时间"`
}

// TranscriptDetail 转录记录详情
type TranscriptDetail struct {
	TranscriptMeta
	TranscriptText     string      `json:"transcriptText" dc:"完整转录文本"`
	TranscriptSegments *gjson.Json `json:"transcriptSegments" dc:"转录分段，含说话人标签"`
	Summary            string      `json:"summary" dc:"摘要。失败任务此字段是一行诊断信息，读取前先检查 status"`
}

// 上传音频并创建转录任务。文件使用 multipart/form-data 上传，字段名是 file。
type UploadReq struct {
	g.Meta       `path:"/upload" method:"post" mime:"multipart/form-data" summary:"上传音频，创建转录任务"`
	Title        string `json:"title" dc:"标题，缺省使用原始文件名"`
	SummaryStyle string `json:"summary_style" d:"meeting" v:"in:meeting,article,brief" dc:"摘要风格"`
}
type UploadRes struct {
	TranscriptMeta
}

type ListReq struct {
	g.Meta `path:"/list" method:"get" summary:"获取转录记录列表"`
	Offset int `json:"offset" d:"0" v:"min:0" dc:"偏移量"`
	Limit  int `json:"limit" d:"20" v:"min:1|max:100" dc:"本次请求返回的数据条数"`
}
type ListRes struct {
	Total       int              `json:"total" dc:"总条目数"`
	Transcripts []TranscriptMeta `json:"transcripts" dc:"记录列表，按创建时间倒序"`
}

type GetReq struct {
	g.Meta `path:"/{id}" method:"get" summary:"获取转录记录详情"`
	Id     string `json:"id" v:"required" dc:"记录ID"`
}
type GetRes TranscriptDetail

type UpdateReq struct {
	g.Meta       `path:"/{id}" method:"patch" summary:"更新转录记录"`
	Id           string `json:"id" v:"required" dc:"记录ID"`
	Title        string `json:"title" dc:"新标题，留空不更新"`
	SummaryStyle string `json:"summary_style" v:"in:meeting,article,brief" dc:"新摘要风格，留空不更新"`
}
type UpdateRes TranscriptDetail

type DeleteReq struct {
	g.Meta `path:"/{id}" method:"delete" summary:"删除转录记录"`
	Id     string `json:"id" v:"required" dc:"记录ID"`
}
type DeleteRes struct {
	Success bool `json:"success" dc:"是否删除成功"`
}

// 重新生成摘要。只重跑摘要阶段，要求记录已有转录文本，不改变任务状态。
type RegenerateReq struct {
	g.Meta       `path:"/{id}/regenerate" method:"post" summary:"重新生成摘要"`
	Id           string `json:"id" v:"required" dc:"记录ID"`
	SummaryStyle string `json:"summary_style" d:"meeting" v:"in:meeting,article,brief" dc:"摘要风格"`
}
type RegenerateRes TranscriptDetail

// 导出转录记录。三种格式输出同一份逻辑文档。
type ExportReq struct {
	g.Meta `path:"/{id}/export/{format}" method:"get" summary:"导出转录记录"`
	Id     string `json:"id" v:"required" dc:"记录ID"`
	Format string `json:"format" v:"required|in:markdown,docx,pdf" dc:"导出格式"`
}
type ExportRes struct{}

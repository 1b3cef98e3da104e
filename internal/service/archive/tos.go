package archive

import (
	"context"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// newTosClient 按配置构建 TOS 客户端
func newTosClient(ctx context.Context) (*tos.ClientV2, error) {
	endpoint := g.Cfg().MustGet(ctx, "archive.tos.endpoint").String()
	region := g.Cfg().MustGet(ctx, "archive.tos.region").String()
	ak := g.Cfg().MustGet(ctx, "archive.tos.ak").String()
	sk := g.Cfg().MustGet(ctx, "archive.tos.sk").String()
	if endpoint == "" || region == "" || ak == "" || sk == "" {
		return nil, gerror.New("archive.tos.* 配置不完整")
	}

	g.Log().Info(ctx, "Volcengine TOS GO SDK Version:", tos.Version)
	client, err := tos.NewClientV2(
		endpoint,
		tos.WithCredentials(tos.NewStaticCredentials(ak, sk)),
		tos.WithRegion(region),
	)
	if err != nil {
		return nil, gerror.Wrap(err, "初始化 TOS 客户端失败")
	}
	return client, nil
}

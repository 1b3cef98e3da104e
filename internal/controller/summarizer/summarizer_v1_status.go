package summarizer

import (
	"context"

	v1 "whisper-transcript-service/api/summarizer/v1"
)

func (c *ControllerV1) Status(ctx context.Context, req *v1.StatusReq) (res *v1.StatusRes, err error) {
	st := c.summarizer.CheckStatus(ctx)
	return &v1.StatusRes{
		Available: st.Available,
		Models:    st.Models,
	}, nil
}

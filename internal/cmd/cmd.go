package cmd

import (
	"context"
	"fmt"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gcmd"

	"whisper-transcript-service/internal/consts"
	summarizerCtl "whisper-transcript-service/internal/controller/summarizer"
	transcriptCtl "whisper-transcript-service/internal/controller/transcript"
	"whisper-transcript-service/internal/middlewares"
	"whisper-transcript-service/internal/service/archive"
	"whisper-transcript-service/internal/service/diarize"
	"whisper-transcript-service/internal/service/media"
	"whisper-transcript-service/internal/service/pipeline"
	"whisper-transcript-service/internal/service/store"
	"whisper-transcript-service/internal/service/stt"
	"whisper-transcript-service/internal/service/summarize"
)

var (
	Main = gcmd.Command{
		Name:  "main",
		Usage: "main",
		Brief: "start http server",
		Func: func(ctx context.Context, parser *gcmd.Parser) (err error) {
			fmt.Println(`
__        ___     _                       _____                                _       _
\ \      / / |__ (_)___ _ __   ___ _ __  |_   _| __ __ _ _ __  ___  ___ _ __ (_)_ __ | |_
 \ \ /\ / /| '_ \| / __| '_ \ / _ \ '__|   | || '__/ _` + "`" + ` | '_ \/ __|/ __| '__|| | '_ \| __|
  \ V  V / | | | | \__ \ |_) |  __/ |      | || | | (_| | | | \__ \ (__| |   | | |_) | |_
   \_/\_/  |_| |_|_|___/ .__/ \___|_|      |_||_|  \__,_|_| |_|___/\___|_|   |_| .__/ \__|
                       |_|                                                     |_|
					 `)
			fmt.Println("Whisper Transcript Service")
			fmt.Println("Copyright 2025 The Chinese University of Hong Kong, Shenzhen")
			fmt.Println()
			s := g.Server()
			logger := g.Log()

			summarizer := summarize.New(ctx)
			if st := summarizer.CheckStatus(ctx); st.Available {
				logger.Infof(ctx, "Ollama 服务可用，已安装模型: %v", st.Models)
			} else {
				logger.Warningf(ctx, "Ollama 服务当前不可用，摘要阶段将会失败，请检查 ollama.baseUrl 配置")
			}

			archiver, err := archive.Init(ctx)
			if err != nil {
				logger.Warningf(ctx, "归档服务初始化失败，已降级为不归档: %v", err)
				archiver = archive.Disabled()
			}

			pm := pipeline.NewManager(pipeline.Deps{
				Store:       store.New(),
				Transcriber: stt.New(ctx),
				Diarizer:    diarize.New(ctx),
				Summarizer:  summarizer,
				Prober:      media.NewProber(g.Cfg().MustGet(ctx, "media.ffprobe", "ffprobe").String()),
				Archiver:    archiver,
				Workers:     g.Cfg().MustGet(ctx, "pipeline.workers", 2).Int(),
				QueueSize:   g.Cfg().MustGet(ctx, "pipeline.queueSize", 64).Int(),
			})
			pm.Start(ctx)
			go pm.Recover(ctx)

			s.SetPort(g.Cfg().MustGet(ctx, "server.port", 8300).Int())
			s.SetClientMaxBodySize(consts.MaxUploadSize)
			s.Use(middlewares.BrotliMiddleware)
			s.Use(ghttp.MiddlewareCORS)
			oai := s.GetOpenApi()
			oai.Config.CommonResponse = ghttp.DefaultHandlerResponse{}
			oai.Config.CommonResponseDataField = "Data"
			s.SetOpenApiPath(g.Cfg().MustGet(ctx, "server.openapiPath", "/api.json").String())
			s.SetSwaggerPath(g.Cfg().MustGet(ctx, "server.swaggerPath", "/swagger").String())

			s.Group("/transcripts", func(group *ghttp.RouterGroup) {
				group.Middleware(ghttp.MiddlewareHandlerResponse)
				group.Bind(
					transcriptCtl.NewV1(pm, summarizer),
				)
			})
			s.Group("/summarizer", func(group *ghttp.RouterGroup) {
				group.Middleware(ghttp.MiddlewareHandlerResponse)
				group.Bind(
					summarizerCtl.NewV1(summarizer),
				)
			})

			s.Run()
			return nil
		},
	}
)

package llm

import (
	"context"
	"strings"
	"time"

	"SmartNotes/config"
	"SmartNotes/pkg/log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// 摘要调用的时间预算 超时降级为占位文案 不影响写入
const summarizeTimeout = 15 * time.Second

const unavailablePrefix = "Summary unavailable: "

type Summarizer struct {
	client  openai.Client
	model   string
	enabled bool
}

func NewSummarizer(conf *config.Config) *Summarizer {
	if conf.LLM == nil || conf.LLM.APIKey == "" {
		return &Summarizer{}
	}
	opts := []option.RequestOption{option.WithAPIKey(conf.LLM.APIKey)}
	if conf.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(conf.LLM.BaseURL))
	}
	return &Summarizer{
		client:  openai.NewClient(opts...),
		model:   conf.LLM.Model,
		enabled: true,
	}
}

// GenSummary 生成笔记摘要 任何失败都返回可读的占位文案 从不返回 error
func (s *Summarizer) GenSummary(ctx context.Context, content string) string {
	if !s.enabled {
		return Placeholder("api key not set")
	}

	ctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()

	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String("Summarize this note clearly and concisely in 2-4 sentences:\n\n" + content),
		},
	}
	params := openai.ChatCompletionNewParams{
		Model:       s.model,
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(150),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}

	startTime := time.Now()
	completion, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen summary", zap.Error(err))
		return Placeholder(err.Error())
	}
	if len(completion.Choices) == 0 {
		return Placeholder("empty response")
	}

	summary := strings.TrimSpace(completion.Choices[0].Message.Content)
	if summary == "" {
		return "Summary generation returned empty result."
	}
	log.L.Info("gen summary", zap.Duration("gen time", time.Since(startTime)))
	return summary
}

func Placeholder(reason string) string {
	return unavailablePrefix + reason
}

// Unavailable 判断是否为降级占位文案 占位结果不进缓存
func Unavailable(summary string) bool {
	return strings.HasPrefix(summary, unavailablePrefix) ||
		summary == "Summary generation returned empty result."
}

package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gads-insights-api/internal/config"
	"github.com/vfg2006/gads-insights-api/internal/domain"
)

// Integrator encapsula as chamadas de geração de texto da OpenAI
type Integrator interface {
	Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, *domain.TokenUsage, error)
	GenerateWithImage(ctx context.Context, model, systemPrompt, userPrompt, imageURL string) (string, *domain.TokenUsage, error)
}

type Service struct {
	Cfg    *config.Config
	client *openai.Client
}

func NewService(cfg *config.Config) Integrator {
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAI.APIKey))
	return &Service{
		Cfg:    cfg,
		client: &client,
	}
}

// Generate envia um par de prompts de sistema e usuário e devolve o conteúdo
// gerado com a contagem oficial de tokens da resposta
func (s *Service) Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, *domain.TokenUsage, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	}

	return s.complete(ctx, model, params)
}

// GenerateWithImage envia o prompt do usuário acompanhado de uma imagem,
// usada na auditoria visual de páginas de destino
func (s *Service) GenerateWithImage(ctx context.Context, model, systemPrompt, userPrompt, imageURL string) (string, *domain.TokenUsage, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(userPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageURL,
				}),
			}),
		},
	}

	return s.complete(ctx, model, params)
}

func (s *Service) complete(ctx context.Context, model string, params openai.ChatCompletionNewParams) (string, *domain.TokenUsage, error) {
	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logrus.WithError(err).WithField("model", model).Error("insights: failed to call completion API")
		return "", nil, err
	}

	if len(resp.Choices) == 0 {
		return "", nil, errors.New("completion response has no choices")
	}

	usage := &domain.TokenUsage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	return resp.Choices[0].Message.Content, usage, nil
}

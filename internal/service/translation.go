package service

import (
	"context"

	"github.com/deppfellow/generic-tools/internal/lib/translate"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/upstream"
)

type TranslationService struct {
	client *translate.Client
}

func NewTranslationService(client *translate.Client) *TranslationService {
	return &TranslationService{client: client}
}

func (s *TranslationService) MyMemory(ctx context.Context, req *model.MyMemoryRequest) (*upstream.Response, error) {
	resp, err := s.client.MyMemory(ctx, req.Text, req.Source, req.Target)
	if err != nil {
		return nil, upstream.HandleError("failed to translate text", err)
	}
	return resp, nil
}

func (s *TranslationService) Google(ctx context.Context, req *model.GoogleTranslateRequest) (*upstream.Response, error) {
	resp, err := s.client.Google(ctx, req.Text, req.Target)
	if err != nil {
		return nil, upstream.HandleError("failed to translate text", err)
	}
	return resp, nil
}

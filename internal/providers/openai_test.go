package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completerStub struct {
	resp openai.ChatCompletionResponse
	err  error

	gotReq openai.ChatCompletionRequest
}

func (s *completerStub) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.gotReq = req
	return s.resp, s.err
}

func TestOpenAIProvider_Complete(t *testing.T) {
	stub := &completerStub{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  hello there \n"}},
			},
		},
	}
	p := &OpenAIProvider{client: stub, model: "gpt-4o-mini", timeout: time.Second}

	got, err := p.Complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)

	assert.Equal(t, "gpt-4o-mini", stub.gotReq.Model)
	require.Len(t, stub.gotReq.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, stub.gotReq.Messages[0].Role)
	assert.Equal(t, "hi", stub.gotReq.Messages[0].Content)
}

func TestOpenAIProvider_Complete_Error(t *testing.T) {
	wantErr := errors.New("boom")
	p := &OpenAIProvider{client: &completerStub{err: wantErr}, model: "gpt-4o-mini", timeout: time.Second}

	_, err := p.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestOpenAIProvider_Complete_NoChoices(t *testing.T) {
	p := &OpenAIProvider{client: &completerStub{}, model: "gpt-4o-mini", timeout: time.Second}

	_, err := p.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

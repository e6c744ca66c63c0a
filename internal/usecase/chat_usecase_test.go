package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ChatModelMock struct{ mock.Mock }

func (m *ChatModelMock) Generate(ctx context.Context, system string, message string) (string, error) {
	args := m.Called(ctx, system, message)
	return args.String(0), args.Error(1)
}

func TestChatUsecase_Ask(t *testing.T) {
	modelMock := new(ChatModelMock)
	modelMock.On("Generate", mock.Anything, mock.MatchedBy(func(system string) bool {
		// 店のペルソナが必ず付く
		return strings.Contains(system, "Alif AI") && strings.Contains(system, "Sahibganj")
	}), "Do you stitch blouses?").Return("Yes, we do! Visit us for a fitting.", nil)

	uc := NewChatUsecase(modelMock, nil)

	reply, err := uc.Ask(context.Background(), "  Do you stitch blouses?  ")
	assert.NoError(t, err)
	assert.Equal(t, "Yes, we do! Visit us for a fitting.", reply)
	modelMock.AssertExpectations(t)
}

func TestChatUsecase_EmptyMessage(t *testing.T) {
	uc := NewChatUsecase(new(ChatModelMock), nil)

	for _, msg := range []string{"", "   "} {
		_, err := uc.Ask(context.Background(), msg)
		he, ok := AsHTTPError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}

func TestChatUsecase_TooLong(t *testing.T) {
	uc := NewChatUsecase(new(ChatModelMock), nil)

	_, err := uc.Ask(context.Background(), strings.Repeat("a", maxChatMessageLen+1))
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestChatUsecase_UpstreamFailureIs502(t *testing.T) {
	modelMock := new(ChatModelMock)
	modelMock.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))

	uc := NewChatUsecase(modelMock, nil)

	_, err := uc.Ask(context.Background(), "hello")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, he.Status)
}

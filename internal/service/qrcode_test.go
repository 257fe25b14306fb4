package service

import (
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_Generate(t *testing.T) {
	svc := NewQRCodeService()

	png, err := svc.Generate(&model.QRCodeRequest{Text: "hello", Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))

	_, err = svc.Generate(&model.QRCodeRequest{Text: strings.Repeat("x", 5000), Scale: 1})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

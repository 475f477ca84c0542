package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"parkpass/internal/sessions"
	"parkpass/internal/shared/config"
	"parkpass/internal/shared/database"
	"parkpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	cc := corsConfig(&config.Config{})
	assert.NotNil(t, cc.AllowOriginFunc)
	assert.True(t, cc.AllowOriginFunc("http://localhost:3000"))

	cc = corsConfig(&config.Config{CORSAllowedOrigins: []string{"http://localhost:3000"}})
	assert.Nil(t, cc.AllowOriginFunc)
	assert.Equal(t, []string{"http://localhost:3000"}, cc.AllowOrigins)
}

func TestSetupRouter_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{APIPrefix: "/api", APIVersion: "v1", CORSAllowedOrigins: []string{"http://localhost:3000"}}
	engine := setupRouter(cfg, &database.DB{}, sessions.NewService(nil, sessions.Config{}, nil), nil, logger.GetDefault())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

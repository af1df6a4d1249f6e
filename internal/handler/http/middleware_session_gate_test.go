// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/service"
	"github.com/MKhiriev/greenwall/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGateRedirect(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		path          string
		wantTarget    string
		wantRedirect  bool
	}{
		{name: "signed in on landing", authenticated: true, path: "/", wantTarget: "/garden", wantRedirect: true},
		{name: "signed in on journal", authenticated: true, path: "/garden"},
		{name: "signed in elsewhere", authenticated: true, path: "/about"},
		{name: "anonymous on journal", path: "/garden", wantTarget: "/", wantRedirect: true},
		{name: "anonymous on journal sub-page", path: "/garden/2026-03-14", wantTarget: "/", wantRedirect: true},
		{name: "anonymous on lookalike path", path: "/gardening"},
		{name: "anonymous on landing", path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := gateRedirect(tt.authenticated, tt.path)

			assert.Equal(t, tt.wantRedirect, ok)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestGateBypass(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"/api/notes", true},
		{"/api", true},
		{"/_next/static/chunk.js", true},
		{"/garden?_rsc=abc", true},
		{"/favicon.ico", true},
		{"/images/leaf.SVG", true},
		{"/img/a.webp", true},
		{"/garden", false},
		{"/", false},
		{"/apix", false},
		{"/script.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.want, gateBypass(r))
		})
	}
}

func TestSessionGate_Middleware(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		cookie       string
		tokenValid   bool
		wantStatus   int
		wantLocation string
	}{
		{name: "anonymous to journal", path: "/garden", wantStatus: http.StatusFound, wantLocation: "/"},
		{name: "invalid cookie to journal", path: "/garden", cookie: "stale", wantStatus: http.StatusFound, wantLocation: "/"},
		{name: "valid cookie to landing", path: "/", cookie: testToken, tokenValid: true, wantStatus: http.StatusFound, wantLocation: "/garden"},
		{name: "valid cookie to journal", path: "/garden", cookie: testToken, tokenValid: true, wantStatus: http.StatusOK},
		{name: "api never redirected", path: "/api/notes", wantStatus: http.StatusOK},
		{name: "framework assets never redirected", path: "/_next/app.js", cookie: testToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			if tt.cookie != "" {
				if tt.tokenValid {
					m.auth.EXPECT().ParseToken(gomock.Any(), tt.cookie).Return(models.Token{UserID: testUserID}, nil).MaxTimes(1)
				} else {
					m.auth.EXPECT().ParseToken(gomock.Any(), tt.cookie).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).MaxTimes(1)
				}
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			h.sessionGate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

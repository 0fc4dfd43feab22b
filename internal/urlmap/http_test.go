// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package urlmap_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/pkg/pagination"
)

func newRouter() http.Handler {
	router := chi.NewRouter()
	urlmap.NewHandler(sampleEntries()).RegisterRoutes(router)
	return router
}

func TestHandler_ListURLs(t *testing.T) {
	router := newRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/urls?type=product&limit=1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []urlmap.Entry  `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 2, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/urls?type=redirect", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_CountURLs(t *testing.T) {
	recorder := httptest.NewRecorder()
	newRouter().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/urls/counts", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Total  int                 `json:"total"`
			ByType map[urlmap.Type]int `json:"by_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Data.Total)
	assert.Equal(t, 2, body.Data.ByType[urlmap.TypeProduct])
}

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeLabel(t *testing.T) {
	assert.Equal(t, "ok", codeLabel(nil))
	assert.Equal(t, "not_found", codeLabel(connect.NewError(connect.CodeNotFound, errors.New("missing"))))
	assert.Equal(t, "unknown", codeLabel(errors.New("plain")))
}

func TestImportedRecipes(t *testing.T) {
	counter := ImportedRecipes.WithLabelValues("imported")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
}

func TestHandler(t *testing.T) {
	RequestsTotal.WithLabelValues("/foodgram.v1.CatalogService/ListTags", "ok").Inc()

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `foodgram_requests_total{code="ok",procedure="/foodgram.v1.CatalogService/ListTags"}`)
}

package myhttp

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/basketbackend/lib/myerrors"
	"github.com/MarcGrol/basketbackend/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	c := context.TODO()
	writer := NewWriter(mylog.New("test"))

	t.Run("Success response carries content-type", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		writer.Write(c, recorder, 200, SuccessResponse{Message: "done"})

		assert.Equal(t, 200, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Body.String(), "done")
	})

	t.Run("Error response carries content-type and mapped status", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		writer.WriteError(c, recorder, 1, myerrors.NewNotFoundError(fmt.Errorf("nothing here")))

		assert.Equal(t, 404, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Body.String(), "nothing here")
	})
}

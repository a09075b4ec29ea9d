package peepsgo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/telmin/peepsgo"
	"github.com/telmin/peepsgo/mocks"
)

func TestHTTPHealth(t *testing.T) {
	nooplog := zerolog.Nop()

	as := assert.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	hndlr.ServeHTTP(w, req)

	as.Equal(http.StatusOK, w.Code)
	as.JSONEq(`{"status":"OK"}`, w.Body.String())
}

func TestHTTPAccounts(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("GET /accounts returns the account list", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			ListAccounts(gomock.Any()).
			Return([]peepsgo.Account{
				{AccountID: "acc1", Peeps: []peepsgo.Peep{}},
			}, nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		var resp struct {
			Accounts []peepsgo.Account `json:"accounts"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		reqrd.Len(resp.Accounts, 1)
		as.Equal("acc1", resp.Accounts[0].AccountID)
		as.NotNil(resp.Accounts[0].Peeps)
		as.Empty(resp.Accounts[0].Peeps)
	})

	t.Run("POST /accounts returns 201 with the new account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			CreateAccount(gomock.Any()).
			Return(&peepsgo.Account{AccountID: "acc1", Peeps: []peepsgo.Peep{}}, nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusCreated, w.Code)
		var acct peepsgo.Account
		err := json.Unmarshal(w.Body.Bytes(), &acct)
		reqrd.Nil(err)
		as.Equal("acc1", acct.AccountID)
	})

	t.Run("GET /accounts/{acctID} returns 404 for an unknown account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			GetAccount(gomock.Any(), "ghost").
			Return(nil, peepsgo.ErrNotFound{Resource: "account", ID: "ghost"}).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/ghost", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
	})

	t.Run("DELETE /accounts returns 204", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			DeleteAllAccounts(gomock.Any()).
			Return(nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodDelete, "/accounts", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNoContent, w.Code)
	})

	t.Run("DELETE /accounts/{acctID} is 204 even for an absent account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			DeleteAccount(gomock.Any(), "ghost").
			Return(nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodDelete, "/accounts/ghost", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNoContent, w.Code)
	})

	t.Run("storage failure surfaces as 500", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			ListAccounts(gomock.Any()).
			Return(nil, peepsgo.ErrStorageUnavailable).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusInternalServerError, w.Code)
		resp := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Contains(resp, "message")
	})
}

func TestHTTPPeeps(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("GET /accounts/{acctID}/peeps returns the peep list", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			ListPeeps(gomock.Any(), "acc1").
			Return([]peepsgo.Peep{
				{"peepId": "p1", "name": "Ann"},
				{"peepId": "p2", "name": "Bo"},
			}, nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/acc1/peeps", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		var resp struct {
			Peeps []peepsgo.Peep `json:"peeps"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		reqrd.Len(resp.Peeps, 2)
		as.Equal("p1", resp.Peeps[0].ID())
		as.Equal("p2", resp.Peeps[1].ID())
	})

	t.Run("POST /accounts/{acctID}/peeps returns 201 with the new peep", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			CreatePeep(gomock.Any(), "acc1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, attrs map[string]interface{}) (peepsgo.Peep, error) {
				peep := peepsgo.Peep{"peepId": "p1"}
				for k, v := range attrs {
					peep[k] = v
				}
				return peep, nil
			}).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"name":"Ann"}`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc1/peeps", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusCreated, w.Code)
		var peep peepsgo.Peep
		err := json.Unmarshal(w.Body.Bytes(), &peep)
		reqrd.Nil(err)
		as.Equal("p1", peep.ID())
		as.Equal("Ann", peep["name"])
	})

	t.Run("POST /accounts/{acctID}/peeps returns 400 on malformed body", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"name":"Ann"`)
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc1/peeps", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
		resp := map[string]map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Contains(resp, "fields")
		as.Contains(resp["fields"], "request body")
	})

	t.Run("PUT /accounts/{acctID}/peeps/{peepID} returns the merged peep", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			UpdatePeep(gomock.Any(), "acc1", "p1", gomock.Any()).
			Return(peepsgo.Peep{"peepId": "p1", "name": "Mal", "note": "kept"}, nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"name":"Mal"}`)
		req := httptest.NewRequest(http.MethodPut, "/accounts/acc1/peeps/p1", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		var peep peepsgo.Peep
		err := json.Unmarshal(w.Body.Bytes(), &peep)
		reqrd.Nil(err)
		as.Equal("Mal", peep["name"])
		as.Equal("kept", peep["note"])
	})

	t.Run("PUT /accounts/{acctID}/peeps/{peepID} returns 404 on unknown peep", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			UpdatePeep(gomock.Any(), "acc1", "nonexistent", gomock.Any()).
			Return(nil, peepsgo.ErrNotFound{Resource: "peep", ID: "nonexistent"}).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"name":"X"}`)
		req := httptest.NewRequest(http.MethodPut, "/accounts/acc1/peeps/nonexistent", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
	})

	t.Run("DELETE /accounts/{acctID}/peeps/{peepID} returns 204", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			DeletePeep(gomock.Any(), "acc1", "p1").
			Return(nil).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodDelete, "/accounts/acc1/peeps/p1", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNoContent, w.Code)
	})

	t.Run("GET /accounts/{acctID}/peeps/export streams a PDF", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			ExportPeeps(gomock.Any(), gomock.Any(), "acc1").
			DoAndReturn(func(_ context.Context, w io.Writer, _ string) error {
				_, err := w.Write([]byte("%PDF-1.4"))
				return err
			}).
			Times(1)

		hndlr := peepsgo.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/accounts/acc1/peeps/export", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		as.Equal("application/pdf", w.Header().Get("Content-Type"))
		as.Contains(w.Body.String(), "%PDF")
	})
}

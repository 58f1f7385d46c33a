package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNoteRequestValidate(t *testing.T) {
	content := "body"
	good := uuid.NewString()
	bad := "nope"
	blank := ""

	tests := []struct {
		name       string
		req        CreateNoteRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  CreateNoteRequest{Title: "t", Content: &content, CategoryID: &good, TagIDs: []string{good}},
		},
		{
			name:       "missing title and content",
			req:        CreateNoteRequest{},
			wantFields: []string{"content", "title"},
		},
		{
			name:       "malformed references",
			req:        CreateNoteRequest{Title: "t", Content: &content, CategoryID: &bad, TagIDs: []string{good, bad}},
			wantFields: []string{"categoryId", "tagIds.1"},
		},
		{
			name:       "blank references",
			req:        CreateNoteRequest{Title: "t", Content: &content, CategoryID: &blank, TagIDs: []string{""}},
			wantFields: []string{"categoryId", "tagIds.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var fields []string
			for _, fe := range FieldErrors(err) {
				fields = append(fields, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestUpdateNoteRequestDecoding(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantPresent  bool
		wantCategory bool
		wantTags     []string
		wantErr      bool
	}{
		{name: "absent", body: `{"title":"x"}`},
		{name: "null clears", body: `{"categoryId":null}`, wantPresent: true},
		{name: "set", body: `{"categoryId":"` + uuid.NewString() + `"}`, wantPresent: true, wantCategory: true},
		{name: "empty tags", body: `{"tagIds":[]}`, wantTags: []string{}},
		{name: "bad category", body: `{"categoryId":"zzz"}`, wantPresent: true, wantCategory: true, wantErr: true},
		{name: "empty title", body: `{"title":""}`, wantErr: true},
		{name: "blank category", body: `{"categoryId":""}`, wantPresent: true, wantCategory: true, wantErr: true},
		{name: "blank tag", body: `{"tagIds":[""]}`, wantTags: []string{""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateNoteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantPresent, req.CategoryID.Present)
			assert.Equal(t, tt.wantCategory, req.CategoryID.Value != nil)
			assert.Equal(t, tt.wantTags, req.TagIDs)

			if tt.wantErr {
				assert.Error(t, req.Validate())
			} else {
				assert.NoError(t, req.Validate())
			}
		})
	}
}

func TestPaginationQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     PaginationQuery
		wantErr   bool
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: PaginationQuery{}, wantPage: 1, wantLimit: 10},
		{name: "explicit", query: PaginationQuery{Page: "3", Limit: "25"}, wantPage: 3, wantLimit: 25},
		{name: "max limit", query: PaginationQuery{Limit: "100"}, wantPage: 1, wantLimit: 100},
		{name: "non-numeric page", query: PaginationQuery{Page: "abc"}, wantErr: true},
		{name: "zero page", query: PaginationQuery{Page: "0"}, wantErr: true},
		{name: "negative limit", query: PaginationQuery{Limit: "-5"}, wantErr: true},
		{name: "limit over max", query: PaginationQuery{Limit: "101"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			page, limit := tt.query.Values()
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestUpdateUserRequestRole(t *testing.T) {
	admin, bogus := "ADMIN", "ROOT"
	assert.NoError(t, UpdateUserRequest{Role: &admin}.Validate())
	assert.Error(t, UpdateUserRequest{Role: &bogus}.Validate())
	assert.NoError(t, UpdateUserRequest{}.Validate())
}

func TestParseUUIDs(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		ids     []string
		want    []uuid.UUID
		wantErr bool
	}{
		{name: "nil", ids: nil, want: []uuid.UUID{}},
		{name: "valid", ids: []string{id.String()}, want: []uuid.UUID{id}},
		{name: "blank", ids: []string{id.String(), ""}, wantErr: true},
		{name: "malformed", ids: []string{"nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUUIDs(tt.ids)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

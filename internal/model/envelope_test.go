package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelope_DecodeCityList(t *testing.T) {
	body := `{"success":true,"message":"ok","code":200,"data":[{"id":1,"name":"Springfield","state":"IL","population":"114000"}]}`

	var env Envelope[[]City]
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	require.True(t, env.OK())
	require.Equal(t, "ok", env.Message)
	require.Equal(t, 200, env.Code)
	require.Equal(t, []City{{ID: 1, Name: "Springfield", State: "IL", Population: "114000"}}, env.Data)
}

func TestEnvelope_DecodeArticle(t *testing.T) {
	body := `{
		"success": true,
		"message": "found",
		"code": 200,
		"data": {
			"id": 7,
			"author": "Kent Brockman",
			"title": "Storm Warning",
			"description": "Heavy rain expected",
			"content": "Residents should stay indoors.",
			"url": "https://news.example.com/7",
			"city": {"id": 1, "name": "Springfield", "state": "IL", "population": "114000"},
			"isLocal": true
		}
	}`

	var env Envelope[Article]
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	require.Equal(t, "Storm Warning", env.Data.Title)
	require.Equal(t, "Springfield", env.Data.City.Name)
	require.True(t, env.Data.IsLocal)
}

func TestEnvelope_PopulationStaysString(t *testing.T) {
	body := `{"success":true,"data":[{"id":2,"name":"Shelbyville","state":"IL","population":"1,234"}]}`

	var env Envelope[[]City]
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	require.Equal(t, "1,234", env.Data[0].Population)
}

func TestEnvelope_FailureKeepsPayloadUntrusted(t *testing.T) {
	body := `{"success":false,"message":"no such city","code":404,"data":null}`

	var env Envelope[Article]
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	require.False(t, env.OK())
	require.Equal(t, 404, env.Code)
	require.Equal(t, Article{}, env.Data)
}

func TestEnvelope_FailureIgnoresPayloadShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"empty string", `""`},
		{"error string", `"No news found"`},
		{"number", `0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"success":false,"message":"failed","code":500,"data":` + tt.data + `}`

			var env Envelope[[]City]
			require.NoError(t, json.Unmarshal([]byte(body), &env))

			require.False(t, env.OK())
			require.Equal(t, "failed", env.Message)
			require.Nil(t, env.Data)
		})
	}
}

func TestEnvelope_SuccessRejectsMismatchedPayload(t *testing.T) {
	var env Envelope[Article]
	require.Error(t, json.Unmarshal([]byte(`{"success":true,"data":"not an article"}`), &env))
}

func TestEnvelope_Status(t *testing.T) {
	env := Envelope[[]City]{Success: false, Message: "db down", Code: 503}

	code, message := env.Status()
	require.Equal(t, 503, code)
	require.Equal(t, "db down", message)
}

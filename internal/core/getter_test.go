package core

import (
	"context"
	"encoding/json"
	"fmt"
)

type reply struct {
	body string
	err  error
}

// fakeGetter serves canned JSON bodies or errors per path and records calls.
type fakeGetter struct {
	replies map[string]reply
	calls   []string
}

func newFakeGetter() *fakeGetter {
	return &fakeGetter{replies: make(map[string]reply)}
}

func (f *fakeGetter) on(path, body string) *fakeGetter {
	f.replies[path] = reply{body: body}

	return f
}

func (f *fakeGetter) fail(path string, err error) *fakeGetter {
	f.replies[path] = reply{err: err}

	return f
}

func (f *fakeGetter) Get(_ context.Context, path string, out any) error {
	f.calls = append(f.calls, path)

	r, ok := f.replies[path]
	if !ok {
		return fmt.Errorf("unexpected path %s", path)
	}

	if r.err != nil {
		return r.err
	}

	return json.Unmarshal([]byte(r.body), out)
}

const (
	springfieldList = `{"success":true,"message":"ok","code":200,"data":[{"id":1,"name":"Springfield","state":"IL","population":"114000"}]}`

	twoCitiesList = `{"success":true,"message":"ok","code":200,"data":[
		{"id":2,"name":"Shelbyville","state":"IL","population":"80000"},
		{"id":1,"name":"Springfield","state":"IL","population":"114000"}
	]}`

	stormWarning = `{"success":true,"message":"ok","code":200,"data":{
		"id":7,"author":"Kent Brockman","title":"Storm Warning","description":"...","content":"...",
		"url":"https://news.example.com/7",
		"city":{"id":1,"name":"Springfield","state":"IL","population":"114000"},
		"isLocal":true
	}}`

	searchFailed = `{"success":false,"message":"no news for city","code":404,"data":null}`
)

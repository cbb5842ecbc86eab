package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"status-backend/internal/employees"
	"status-backend/internal/status"
)

func TestRunPrintsConnectedEnvelope(t *testing.T) {
	var out bytes.Buffer
	repo := employees.NewMemoryRepo(employees.Employee{ID: 1, Name: "Alice", Domain: "Eng"})

	code := run(context.Background(), status.NewService(repo), &out)

	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{"database":"connected","count":1,"employees":[{"id":1,"name":"Alice","domain":"Eng"}]}`, out.String())
}

func TestRunExitsNonZeroOnError(t *testing.T) {
	var out bytes.Buffer
	repo := employees.NewMemoryRepo()
	repo.SetError(errors.New("connection refused"))

	code := run(context.Background(), status.NewService(repo), &out)

	assert.Equal(t, 1, code)
	assert.JSONEq(t, `{"database":"error","message":"connection refused"}`, out.String())
}

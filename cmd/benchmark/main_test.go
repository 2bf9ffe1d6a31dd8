package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/debarchito/time-table-generator/internal/engine"
)

func TestBuildInput(t *testing.T) {
	for _, benchmark := range cases {
		input := buildInput(benchmark)

		input.Normalize()
		assert.Nil(t, input.Validate(), benchmark.Name)

		assert.Len(t, input.Groups, benchmark.Groups)
		assert.Len(t, input.Teachers, benchmark.Teachers)
		assert.Len(t, input.Rooms, benchmark.Rooms)

		requests := engine.GenerateRequests(input)
		assert.Len(t, requests, benchmark.Groups*benchmark.SubjectsPerGroup)

		// Every subject must be teachable, otherwise the benchmark measures drops instead of search
		for _, request := range requests {
			assert.NotEmpty(t, request.Teachers, request.EventId)
		}
	}
}

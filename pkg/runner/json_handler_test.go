package runner_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/aretw0/cubewalk/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_TracesSample(t *testing.T) {
	var buf bytes.Buffer
	h := runner.NewJSONHandler(&buf)

	p, err := dsl.Sample().Build()
	require.NoError(t, err)
	res, err := cubewalk.New(cubewalk.WithLifecycleHooks(h.Hooks())).Solve(context.Background(), p, domain.ModeCube)
	require.NoError(t, err)
	require.NoError(t, h.Err())

	counts := map[domain.EventType]int{}
	var last map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line), "each line is a JSON object")
		assert.Equal(t, "cube", line["mode"])
		counts[domain.EventType(line["type"].(string))]++
		last = line
	}

	assert.Equal(t, res.Steps, counts[domain.EventStep])
	assert.Equal(t, res.Crossed, counts[domain.EventCross])
	assert.Equal(t, res.Blocked, counts[domain.EventBlocked])
	assert.Equal(t, 6, counts[domain.EventTurn])
	require.NotNil(t, last)
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestJSONHandler_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	h := runner.NewJSONHandler(w)
	hooks := h.Hooks()

	hooks.OnTurn(context.Background(), &domain.TurnEvent{Turn: domain.TurnLeft})
	hooks.OnStep(context.Background(), &domain.MoveEvent{})

	assert.EqualError(t, h.Err(), "disk full")
	assert.Equal(t, 1, w.writes)
}

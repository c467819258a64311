package cubewalk_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/pkg/adapters/memory"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func samplePuzzle(t *testing.T) *domain.Puzzle {
	t.Helper()
	p, err := cubewalk.Parse([]byte(dsl.Sample().Text()), 0)
	require.NoError(t, err)
	return p
}

func TestSolver_Sample(t *testing.T) {
	tests := []struct {
		mode     domain.Mode
		password int
	}{
		{domain.ModeFlat, 6032},
		{domain.ModeCube, 5031},
	}

	p := samplePuzzle(t)
	s := cubewalk.New()

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			res, err := s.Solve(context.Background(), p, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.password, res.Password)
			assert.Equal(t, tt.mode, res.Mode)
			assert.Equal(t, 4, res.FaceSize)
			assert.Equal(t, cubewalk.Digest(p, tt.mode), res.Digest)
		})
	}
}

func TestSolver_EmptyPathReportsStart(t *testing.T) {
	p := samplePuzzle(t)
	p.Instructions = nil

	res, err := cubewalk.New().Solve(context.Background(), p, domain.ModeCube)
	require.NoError(t, err)
	// Row 1, column 9, facing right.
	assert.Equal(t, 1036, res.Password)
	assert.Zero(t, res.Steps)
}

func TestSolver_CachesResults(t *testing.T) {
	store := memory.NewStore()
	steps := 0
	hooks := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.MoveEvent) { steps++ },
	}
	s := cubewalk.New(cubewalk.WithStore(store), cubewalk.WithLifecycleHooks(hooks))
	p := samplePuzzle(t)
	ctx := context.Background()

	first, err := s.Solve(ctx, p, domain.ModeCube)
	require.NoError(t, err)
	walked := steps
	require.Positive(t, walked)

	digests, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first.Digest}, digests)

	second, err := s.Solve(ctx, p, domain.ModeCube)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, walked, steps, "cached results are not walked again")
}

func TestSolver_ConcurrentSolvesWalkOnce(t *testing.T) {
	var crossings atomic.Int32
	hooks := domain.LifecycleHooks{
		OnCross: func(context.Context, *domain.MoveEvent) { crossings.Add(1) },
	}
	s := cubewalk.New(cubewalk.WithStore(memory.NewStore()), cubewalk.WithLifecycleHooks(hooks))
	p := samplePuzzle(t)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			res, err := s.Solve(ctx, p, domain.ModeCube)
			if err == nil && res.Password != 5031 {
				err = fmt.Errorf("password %d", res.Password)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())

	single, err := cubewalk.New().Solve(context.Background(), p, domain.ModeCube)
	require.NoError(t, err)
	assert.Equal(t, int32(single.Crossed), crossings.Load())
}

func TestSolver_Errors(t *testing.T) {
	s := cubewalk.New()
	ctx := context.Background()

	_, err := s.Solve(ctx, nil, domain.ModeCube)
	assert.Error(t, err)

	p := samplePuzzle(t)
	_, err = s.Solve(ctx, p, "sphere")
	assert.ErrorIs(t, err, domain.ErrUnknownMode)

	bad := &domain.Puzzle{Rows: []string{"....", "...."}, FaceSize: 2}
	_, err = s.Solve(ctx, bad, domain.ModeCube)
	assert.ErrorIs(t, err, domain.ErrTopology)

	_, err = s.Solve(ctx, bad, domain.ModeFlat)
	assert.NoError(t, err, "flat mode accepts any net")
}

func TestSolver_Seams(t *testing.T) {
	seams, err := cubewalk.New().Seams(context.Background(), samplePuzzle(t), domain.ModeCube)
	require.NoError(t, err)
	assert.Len(t, seams, 24)
}

func TestDigest_DependsOnInputs(t *testing.T) {
	p := samplePuzzle(t)
	flat := cubewalk.Digest(p, domain.ModeFlat)
	cube := cubewalk.Digest(p, domain.ModeCube)
	assert.NotEqual(t, flat, cube)
	assert.Len(t, cube, 64)

	q := *p
	q.Instructions = q.Instructions[:1]
	assert.NotEqual(t, cube, cubewalk.Digest(&q, domain.ModeCube))
	assert.Equal(t, cube, cubewalk.Digest(p, domain.ModeCube))
}

func TestRunner(t *testing.T) {
	var out bytes.Buffer
	r := cubewalk.NewRunner()
	r.Input = strings.NewReader(dsl.Sample().Text())
	r.Output = &out
	r.Headless = true
	r.Renderer = func(s string) (string, error) { return strings.ToUpper(s), nil }

	results, err := r.Run(context.Background(), cubewalk.New())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 6032, results[0].Password)
	assert.Equal(t, 5031, results[1].Password)
	assert.Contains(t, out.String(), "## FLAT")
	assert.Contains(t, out.String(), "**PASSWORD**: 5031")
	assert.NotContains(t, out.String(), "---")
}

func TestRunner_RequiresIO(t *testing.T) {
	r := cubewalk.NewRunner()
	_, err := r.Run(context.Background(), cubewalk.New())
	assert.Error(t, err)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peilbuis/internal/shared/testutil"
)

type recordedCall struct {
	name string
	args []string
}

func fakeOpener(t *testing.T, goos string, failures int) (*Opener, *[]recordedCall) {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	calls := &[]recordedCall{}

	o := NewOpener(logger)
	o.goos = goos
	o.start = func(name string, args ...string) error {
		*calls = append(*calls, recordedCall{name: name, args: args})
		if len(*calls) <= failures {
			return errors.New("not available")
		}
		return nil
	}
	return o, calls
}

func TestOpenMethods(t *testing.T) {
	tests := []struct {
		goos  string
		first string
		count int
	}{
		{"windows", "cmd", 3},
		{"darwin", "open", 1},
		{"linux", "xdg-open", 2},
		{"freebsd", "xdg-open", 2},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			methods := openMethods(tt.goos, "uit.xlsx")
			require.Len(t, methods, tt.count)
			assert.Equal(t, tt.first, methods[0].cmd)
			for _, m := range methods {
				assert.Equal(t, "uit.xlsx", m.args[len(m.args)-1])
			}
		})
	}
}

func TestOpener_FirstMethodWorks(t *testing.T) {
	o, calls := fakeOpener(t, "darwin", 0)

	require.NoError(t, o.Open(context.Background(), "uit.xlsx"))
	assert.Equal(t, []recordedCall{{name: "open", args: []string{"uit.xlsx"}}}, *calls)
}

func TestOpener_FallsBack(t *testing.T) {
	o, calls := fakeOpener(t, "windows", 2)

	require.NoError(t, o.Open(context.Background(), "uit.xlsx"))
	require.Len(t, *calls, 3)
	assert.Equal(t, "explorer", (*calls)[2].name)
}

func TestOpener_AllMethodsFail(t *testing.T) {
	o, calls := fakeOpener(t, "linux", 10)

	err := o.Open(context.Background(), "uit.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Len(t, *calls, 2)
}

func TestOpener_CancelledContext(t *testing.T) {
	o, calls := fakeOpener(t, "linux", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, o.Open(ctx, "uit.xlsx"), context.Canceled)
	assert.Empty(t, *calls)
}

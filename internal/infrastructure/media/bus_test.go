package media

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogBusEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   busEvent
		want []string
	}{
		{
			name: "error",
			ev:   busEvent{kind: busError, source: "v4l2src0", text: "Cannot identify device", debug: "v4l2_calls.c"},
			want: []string{`"level":"error"`, `"message":"Cannot identify device"`, `"source":"v4l2src0"`, `"debug":"v4l2_calls.c"`},
		},
		{
			name: "warning",
			ev:   busEvent{kind: busWarning, source: "gtksink0", text: "late buffers"},
			want: []string{`"level":"warn"`, `"message":"late buffers"`},
		},
		{
			name: "eos",
			ev:   busEvent{kind: busEOS, source: "camview"},
			want: []string{`"level":"info"`, `"message":"end of stream"`},
		},
		{
			name: "state change",
			ev:   busEvent{kind: busStateChanged, from: "paused", to: "playing"},
			want: []string{`"level":"debug"`, `"from":"paused"`, `"to":"playing"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf).Level(zerolog.DebugLevel)

			logBusEvent(&log, tt.ev)

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

type fakeObject struct{ p unsafe.Pointer }

func (f *fakeObject) Unsafe() unsafe.Pointer { return f.p }

func TestObjectPointer(t *testing.T) {
	var anchor int
	ptr := unsafe.Pointer(&anchor)

	assert.Equal(t, ptr, objectPointer(&fakeObject{p: ptr}))
	assert.Nil(t, objectPointer((*fakeObject)(nil)))
	assert.Nil(t, objectPointer(nil))
	assert.Nil(t, objectPointer("widget"))
}

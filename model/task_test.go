package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTaskProgress tests the completed-share calculation, including
// the empty list and rounding.
func TestTaskProgress(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{name: "empty", tasks: nil, want: 0},
		{
			name:  "none done",
			tasks: []Task{{ID: "t1"}, {ID: "t2"}},
			want:  0,
		},
		{
			name:  "all done",
			tasks: []Task{{ID: "t1", Completed: true}},
			want:  100,
		},
		{
			name:  "one of three rounds",
			tasks: []Task{{Completed: true}, {}, {}},
			want:  33,
		},
		{
			name:  "two of three rounds",
			tasks: []Task{{Completed: true}, {Completed: true}, {}},
			want:  67,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, TaskProgress(test.tasks))
		})
	}
}

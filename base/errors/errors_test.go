// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func twoValues(fail bool) (int, error) {
	if fail {
		return 3, errTest
	}
	return 5, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(errTest), errTest)
	assert.Equal(t, 5, Log1(twoValues(false)))
	assert.Equal(t, 3, Log1(twoValues(true)))
	assert.Equal(t, 3, Ignore1(twoValues(true)))
}

func TestWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", errTest)
	assert.True(t, Is(err, errTest))
	assert.True(t, Is(Join(nil, err), errTest))
	assert.Panics(t, func() { Must(errTest) })
	assert.NotPanics(t, func() { Must(nil) })
}

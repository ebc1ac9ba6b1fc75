package main

import (
	"errors"
	"math"
	"strconv"

	"github.com/launchdarkly/unit-test-harness/framework"

	"github.com/stretchr/testify/require"
)

func init() {
	framework.Test("Assertions", "simple expressions pass", func(t *framework.T) {
		t.True(true)
		t.True(!false)
		t.False(1 == 2)
		t.True(2 != 5)
		t.True(1 < 10)
		t.True(100 > 2.34)
		t.True("foo" == "foo")
		t.True("ciphertext" != "plaintext")
	})

	framework.Test("Assertions", "equality compares values deeply", func(t *framework.T) {
		t.Equal(42, 6*7)
		t.Equal([]string{"a", "b"}, []string{"a", "b"})
		t.NotEqual(map[string]int{"a": 1}, map[string]int{"a": 2})
	})

	framework.Test("Assertions", "string equality uses text forms", func(t *framework.T) {
		t.StrEqual(42, strconv.Itoa(42))
		t.StrEqual(true, "true")
	})

	framework.Test("Assertions", "near allows a difference of exactly epsilon", func(t *framework.T) {
		t.Near(math.Pi, 3.14159, 0.00001)
		t.Near(1.0, 1.5, 0.5)
	})

	framework.Test("Assertions", "testify require can be used", func(t *framework.T) {
		n, err := strconv.Atoi("123")
		require.NoError(t, err)
		require.Equal(t, 123, n)
		_, err = strconv.Atoi("x")
		require.Error(t, err)
		require.True(t, errors.Is(err, strconv.ErrSyntax))
	})
}

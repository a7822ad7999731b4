package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMD5(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", CalculateMD5([]byte("hello")))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5(nil))
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, SplitCommaList(""))
	assert.Equal(t, []string{"React"}, SplitCommaList("React"))
	assert.Equal(t, []string{"React", "GraphQL"}, SplitCommaList(" React, GraphQL ,,"))
	assert.Empty(t, SplitCommaList(" , ,"))
}

package ec2

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestBuildTagFilters(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, BuildTagFilters(nil))
	})

	t.Run("sorted by key with multi values", func(t *testing.T) {
		filters := BuildTagFilters(map[string]string{
			"team": "core, infra",
			"env":  "test",
		})
		if assert.Len(t, filters, 2) {
			assert.Equal(t, "tag:env", aws.ToString(filters[0].Name))
			assert.Equal(t, []string{"test"}, filters[0].Values)
			assert.Equal(t, "tag:team", aws.ToString(filters[1].Name))
			assert.Equal(t, []string{"core", "infra"}, filters[1].Values)
		}
	})

	t.Run("wildcard requires key only", func(t *testing.T) {
		filters := BuildTagFilters(map[string]string{"stack": "*"})
		if assert.Len(t, filters, 1) {
			assert.Equal(t, "tag-key", aws.ToString(filters[0].Name))
			assert.Equal(t, []string{"stack"}, filters[0].Values)
		}
	})

	t.Run("blank keys and empty lists skipped", func(t *testing.T) {
		filters := BuildTagFilters(map[string]string{" ": "x", "owner": " , "})
		assert.Empty(t, filters)
	})
}

func TestSplitFilterValue(t *testing.T) {
	assert.Equal(t, []string{"a"}, SplitFilterValue("a"))
	assert.Equal(t, []string{"a", "b"}, SplitFilterValue("a, b,"))
	assert.Equal(t, []string{}, SplitFilterValue(","))
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "how-to-write-go", Slugify("How to write Go!"))
	assert.Equal(t, "a-b", Slugify("  --A__B--  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestArticleSlug(t *testing.T) {
	a := ArticleSlug("salt", "Same Title", 1)
	b := ArticleSlug("salt", "Same Title", 2)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "same-title-"))
	assert.Equal(t, a, ArticleSlug("salt", "Same Title", 1))
}

func TestGenHashID(t *testing.T) {
	h := GenHashID("salt", 42)
	assert.GreaterOrEqual(t, len(h), 8)
	assert.Equal(t, strings.ToLower(h), h)
}

package utils

import (
	"bytes"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/speps/go-hashids/v2"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz1234567890"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

// GenHashID encodes id into a short salted string.
func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	hd.Alphabet = slugAlphabet
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return fmt.Sprintf("%d", id)
	}
	e, err := h.EncodeInt64([]int64{id})
	if err != nil {
		return fmt.Sprintf("%d", id)
	}
	return e
}

// Slugify lower-cases title and joins its words with dashes.
func Slugify(title string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// ArticleSlug combines the title slug with a hash of the article id, so two
// articles with the same title still get distinct slugs.
func ArticleSlug(salt, title string, id int64) string {
	base := Slugify(title)
	if base == "" {
		return GenHashID(salt, id)
	}
	return base + "-" + GenHashID(salt, id)
}

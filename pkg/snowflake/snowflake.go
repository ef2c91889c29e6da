package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// SetNode picks the worker node id. It must run before the first GenID call to take effect.
func SetNode(id int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(id)
	})
	return err
}

func GenID() int64 {
	once.Do(func() {
		node, _ = snowflake.NewNode(1)
	})
	return node.Generate().Int64()
}

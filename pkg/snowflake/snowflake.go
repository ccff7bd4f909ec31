package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// SetNode 多实例部署时按实例编号重建节点，避免请求 ID 冲突
func SetNode(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}
	node = n
	return nil
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenRequestID 请求链路 ID，base58 更短，便于日志检索
func GenRequestID() string {
	return node.Generate().Base58()
}

package types

import "strconv"

const DefaultLimit = 10

type Page struct {
	Limit  int
	Offset int
}

// ParsePage 解析 limit/offset 查询参数
// limit 缺省、非数字或 <=0 时取 defaultLimit；offset 缺省、非数字或 <0 时取 0；maxLimit 为 0 表示不设上限
func ParsePage(limit, offset string, defaultLimit, maxLimit int) Page {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	p := Page{Limit: defaultLimit}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if n, err := strconv.Atoi(offset); err == nil && n > 0 {
		p.Offset = n
	}
	return p
}

// Normalize 对直接构造的 Page 做同样的兜底
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

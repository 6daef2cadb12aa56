package domain

import "strings"

// RevieweeNamePlaceholder 存储文案里的占位标记，组装时整体替换成被评价者的名字
const RevieweeNamePlaceholder = "{revieweeName}"

// Substitute 把 s 里出现的所有占位标记替换成 name。
// 只做字面整体替换，不是模板语言，没有转义和嵌套。
func Substitute(s string, name string) string {
	return strings.ReplaceAll(s, RevieweeNamePlaceholder, name)
}

package randcode

import "math/rand"

// Alphabet 随机码的字符表，大写字母 + 数字
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandFunc 定义取随机下标的函数类型，返回 [0, n) 内的整数
type RandFunc func(n int) int

// Generator 生成指定长度的随机码
type Generator struct {
	randFunc RandFunc
}

// NewGeneratorWith 创建一个 Generator 实例，随机源由调用方注入
func NewGeneratorWith(randFunc RandFunc) *Generator {
	return &Generator{
		randFunc: randFunc,
	}
}

// NewGenerator 创建一个 Generator 实例
func NewGenerator() *Generator {
	return NewGeneratorWith(rand.Intn)
}

// Generate 生成 length 位的随机码，每一位都从 Alphabet 中均匀选取
func (g *Generator) Generate(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = Alphabet[g.randFunc(len(Alphabet))]
	}
	return string(buf)
}

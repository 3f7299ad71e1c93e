// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xpool: 弹性 Worker Pool，常驻/突发 worker 分离、空闲回收、优雅关闭
//
// 设计原则：
//   - 小而正交的工具包，不相互依赖
//   - 跨平台兼容
package util

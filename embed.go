// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
// 音乐不嵌入桌面端二进制，通过 -assets 目录加载
package main

import "embed"

//go:embed data/themes.yaml data/reveal.yaml
var dataFS embed.FS

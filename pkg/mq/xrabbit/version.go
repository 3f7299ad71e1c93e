package xrabbit

// Version 是库版本号，作为客户端身份表 version 键的取值呈现给 Broker。
const Version = "0.1.0"

// libraryProduct 是客户端身份表 product 键的取值。
const libraryProduct = "rabbitx"

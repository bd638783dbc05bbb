package version

// -ldflags で上書きする
var version = "dev"

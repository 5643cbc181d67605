package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist reports whether the path exists
// IsExist 判断路径是否存在
func IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// CreatePath creates all parent directories for the given file path
// CreatePath 为给定文件路径创建所有父级目录
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}

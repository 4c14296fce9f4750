package domain

import "fmt"

// File 一个待上传的候选文件
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileSet 跨多次选择累积的候选文件列表。
// 每次 Add 追加而不是替换，Remove 按位置删除并保持其余文件的相对顺序。
type FileSet struct {
	files []File
	min   int
}

// NewFileSet 创建候选集，min 为校验通过所需的最少文件数
func NewFileSet(min int) *FileSet {
	return &FileSet{min: min}
}

// Add 追加新选择的文件
func (s *FileSet) Add(files ...File) {
	s.files = append(s.files, files...)
}

// Remove 按位置删除一个文件
func (s *FileSet) Remove(index int) error {
	if index < 0 || index >= len(s.files) {
		return fmt.Errorf("file index %d out of range [0,%d)", index, len(s.files))
	}
	s.files = append(s.files[:index], s.files[index+1:]...)
	return nil
}

// Files 按加入顺序返回全部候选文件
func (s *FileSet) Files() []File { return s.files }

// Count 当前候选文件数
func (s *FileSet) Count() int { return len(s.files) }

// Min 校验所需最少文件数
func (s *FileSet) Min() int { return s.min }

// Valid 是否达到最少文件数
func (s *FileSet) Valid() bool { return len(s.files) >= s.min }

// Deficit 距离最少文件数还差几个；已达标返回 0
func (s *FileSet) Deficit() int {
	if d := s.min - len(s.files); d > 0 {
		return d
	}
	return 0
}

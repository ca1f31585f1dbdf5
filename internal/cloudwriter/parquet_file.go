package cloudwriter

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"
)

// CloudParquetFile adapts a CloudWriter to the parquet source.ParquetFile
// interface. It is write-only: parquet exports stream to the object store
// and are never read back through this path.
type CloudParquetFile struct {
	cloudWriter CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

// Open returns the receiver; cloud objects have no open step.
func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

// Create returns the receiver; the object comes into existence on Close.
func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	n, err = c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}

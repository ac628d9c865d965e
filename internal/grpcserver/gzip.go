package grpcserver

import (
	"io"
	"sync"

	kgzip "github.com/klauspost/compress/gzip"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/encoding/gzip"
)

// registerKlauspostGzip swaps grpc-go's default gzip codec (compress/gzip)
// for one backed by klauspost/compress/gzip, the same compression library
// already used elsewhere in this module's dependency stack. It must run
// once at process start, before any server or client dials.
func registerKlauspostGzip() {
	encoding.RegisterCompressor(&klauspostCompressor{})
}

type klauspostCompressor struct {
	writers sync.Pool
	readers sync.Pool
}

func (c *klauspostCompressor) Name() string { return gzip.Name }

func (c *klauspostCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	if z, ok := c.writers.Get().(*kgzip.Writer); ok {
		z.Reset(w)
		return &pooledWriter{Writer: z, pool: &c.writers}, nil
	}
	return &pooledWriter{Writer: kgzip.NewWriter(w), pool: &c.writers}, nil
}

func (c *klauspostCompressor) Decompress(r io.Reader) (io.Reader, error) {
	if z, ok := c.readers.Get().(*kgzip.Reader); ok {
		if err := z.Reset(r); err != nil {
			return nil, err
		}
		return &pooledReader{Reader: z, pool: &c.readers}, nil
	}
	z, err := kgzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &pooledReader{Reader: z, pool: &c.readers}, nil
}

type pooledWriter struct {
	*kgzip.Writer
	pool *sync.Pool
}

func (w *pooledWriter) Close() error {
	err := w.Writer.Close()
	w.pool.Put(w.Writer)
	return err
}

type pooledReader struct {
	*kgzip.Reader
	pool *sync.Pool
}

func (r *pooledReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if err == io.EOF {
		r.pool.Put(r.Reader)
	}
	return n, err
}

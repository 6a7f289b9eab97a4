package vos

import "io"

// VIO holds the standard streams of a script run.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

type VIOAdapter struct {
	IStdin  io.Reader
	IStdout io.Writer
	IStderr io.Writer
}

// NewVIOAdapter wraps the given streams, nil streams read nothing and discard
// writes.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdin:  readerOrDiscard(stdin),
		IStdout: writerOrDiscard(stdout),
		IStderr: writerOrDiscard(stderr),
	}
}

// NewNullIO creates a valid /dev/null style I/O, reads won't work and
// writes will be discarded.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil, nil)
}

var _ VIO = (*VIOAdapter)(nil)

func (pr *VIOAdapter) Stdin() io.Reader {
	return pr.IStdin
}

func (pr *VIOAdapter) Stdout() io.Writer {
	return pr.IStdout
}

func (pr *VIOAdapter) Stderr() io.Writer {
	return pr.IStderr
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return &devNull{}
	}
	return w
}

func readerOrDiscard(r io.Reader) io.Reader {
	if r == nil {
		return &devNull{}
	}
	return r
}

// IsNull reports whether the stream was substituted with /dev/null.
func IsNull(stream interface{}) bool {
	_, ok := stream.(*devNull)
	return ok
}

// devNull implements io.Reader and io.Writer, reads hit EOF immediately and
// writes are discarded.
type devNull struct{}

var _ io.Reader = (*devNull)(nil)
var _ io.Writer = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

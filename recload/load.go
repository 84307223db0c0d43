package recload

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress is the message type broadcast to subscribers after every loaded
// fragment.
type Progress struct {
	Loaded int64 // bytes read so far
	Total  int64 // file size in bytes
}

// Batch represents a record file which is being loaded in the background.
type Batch struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	cast      *caster.Caster // broadcaster for fragment progress
	done      chan struct{}  // closed when loading has finished
	records   []string       // loaded records, valid after done
	lastError error          // remember last I/O error
}

// Load opens a file, which must contain newline-separated records, and
// starts loading it as a batch. Clients may indicate a recommended fragment
// length; 0 lets Load use sensible defaults depending on file size.
//
// Loading of large files is done asynchronously, but this is transparent to
// the client: Records synchronizes with the loader. Opening of the file is
// always done synchronously.
func Load(name string, fragSize int64) (*Batch, error) {
	b, file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := b.info.Size()
	if fragSize <= 0 || fragSize > oneMb {
		if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = twoKb
		} else if size < oneMb {
			fragSize = sixKb
		} else {
			fragSize = tenKb
		}
	}
	go b.loadAllFragments(file, fragSize)
	return b, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*Batch, *os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, nil, err
	}
	b := &Batch{
		path: name,
		info: fi,
		cast: caster.New(nil), // we will broadcast progress when fragments are loaded
		done: make(chan struct{}),
	}
	return b, file, nil
}

// Records blocks until loading has finished, then returns all records in
// file order. The final record is produced whether or not the file ends
// with a newline; an empty file yields no records.
func (b *Batch) Records() ([]string, error) {
	<-b.done
	return b.records, b.lastError
}

// Done returns a channel that is closed once loading has finished.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Subscribe registers for Progress broadcasts. The returned cancel function
// must be called when the subscriber loses interest; the channel is closed
// after the final fragment either way.
func (b *Batch) Subscribe() (<-chan interface{}, func()) {
	ch, _ := b.cast.Sub(nil, 1)
	return ch, func() { b.cast.Unsub(ch) }
}

// Path returns the name of the underlying file.
func (b *Batch) Path() string {
	return b.path
}

// loadAllFragments reads the file fragment by fragment, publishing progress
// after each one, and splits the accumulated content into records.
func (b *Batch) loadAllFragments(file *os.File, fragSize int64) {
	defer b.cast.Close()
	defer close(b.done)
	defer file.Close()
	//
	size := b.info.Size()
	var content strings.Builder
	content.Grow(int(size))
	buf := make([]byte, fragSize)
	var loaded int64
	for loaded < size {
		cnt, err := file.ReadAt(buf, loaded)
		if cnt > 0 {
			content.Write(buf[:cnt])
			loaded += int64(cnt)
			b.cast.Pub(Progress{Loaded: loaded, Total: size})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			b.lastError = fmt.Errorf("error loading record fragment: %w", err)
			tracer().Errorf("recload: %v", b.lastError)
			return
		}
	}
	b.records = splitRecords(content.String())
	tracer().Debugf("recload: loaded %d records from %q", len(b.records), b.path)
}

// splitRecords splits file content on newlines. A trailing newline does not
// produce a final empty record; interior empty lines do.
func splitRecords(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

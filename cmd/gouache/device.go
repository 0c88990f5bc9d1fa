package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gouache/text"
)

// dumpDevice is a text.Device that counts uploads and, when dir is set,
// writes every uploaded buffer to a file.
type dumpDevice struct {
	dir   string
	next  uint32
	bytes int
	draws int
	files []string
}

func newDumpDevice(dir string) (*dumpDevice, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
	}
	return &dumpDevice{dir: dir}, nil
}

func (d *dumpDevice) write(name string, data []byte) error {
	d.bytes += len(data)
	if d.dir == "" {
		return nil
	}
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	d.files = append(d.files, path)
	return nil
}

func (d *dumpDevice) CreateMesh(vertices, indices []byte, indexCount int) (text.MeshHandle, error) {
	d.next++
	if err := d.write(fmt.Sprintf("mesh-%d.vertices.bin", d.next), vertices); err != nil {
		return 0, err
	}
	if err := d.write(fmt.Sprintf("mesh-%d.indices.bin", d.next), indices); err != nil {
		return 0, err
	}
	return text.MeshHandle(d.next), nil
}

func (d *dumpDevice) CreateTexture(name string, tex text.TextureData) (text.TextureHandle, error) {
	d.next++
	file := fmt.Sprintf("%s-%dx%d-%s.bin", name, tex.Width, tex.Height, tex.Format)
	if err := d.write(file, tex.Bytes); err != nil {
		return 0, err
	}
	return text.TextureHandle(d.next), nil
}

func (d *dumpDevice) Draw(mesh text.MeshHandle, u text.Uniforms, textures map[string]text.TextureHandle) error {
	d.draws++
	return d.write(fmt.Sprintf("draw-%d.uniforms.bin", d.draws), u.Bytes())
}

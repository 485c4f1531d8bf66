package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/secret-decoder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func runEncoder(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootFlags = kdfFlags{}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	src := t.TempDir()
	bundle := t.TempDir()
	decoded := t.TempDir()

	image := writeFile(t, src, "photo.png", []byte("\x89PNG\r\n\x1a\nfake image"))
	audio := writeFile(t, src, "song.mp3", []byte("ID3\x03\x00fake audio"))

	out, err := runEncoder(t, "encode", "123456", image, audio, "Happy Birthday\n\nHELLO",
		"--out", bundle, "--iterations", "1000")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Bundle written")
	assert.FileExists(t, filepath.Join(bundle, models.TokenFileName))
	assert.FileExists(t, filepath.Join(bundle, models.AssetText.FileName()))
	assert.NoFileExists(t, filepath.Join(bundle, models.AssetImageTile.FileName()))

	out, err = runEncoder(t, "decode", "123456", "--bundle", bundle, "--out", decoded, "--iterations", "1000")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Passcode verified")

	text, err := os.ReadFile(filepath.Join(decoded, "decrypted-text.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Happy Birthday\n\nHELLO", string(text))
}

func TestDecode_WrongPasscode(t *testing.T) {
	src := t.TempDir()
	bundle := t.TempDir()

	image := writeFile(t, src, "photo.png", []byte("image"))
	audio := writeFile(t, src, "song.mp3", []byte("audio"))

	_, err := runEncoder(t, "encode", "123456", image, audio, "HELLO", "--out", bundle, "--iterations", "1000")
	require.NoError(t, err)

	out, err := runEncoder(t, "decode", "654321", "--bundle", bundle, "--out", t.TempDir(), "--iterations", "1000")
	assert.Error(t, err)
	assert.Contains(t, out, "Decoding failed")
}

func TestEncode_RejectsNonNumericPasscode(t *testing.T) {
	src := t.TempDir()
	image := writeFile(t, src, "photo.png", []byte("image"))
	audio := writeFile(t, src, "song.mp3", []byte("audio"))

	_, err := runEncoder(t, "encode", "12ab56", image, audio, "HELLO", "--out", t.TempDir(), "--iterations", "1000")
	assert.Error(t, err)
}

func TestEncode_ArgCount(t *testing.T) {
	_, err := runEncoder(t, "encode", "123456")
	assert.Error(t, err)
}

func TestRoot_PrintsBannerAndHelp(t *testing.T) {
	out, err := runEncoder(t)

	require.NoError(t, err)
	assert.Contains(t, out, banner())
	assert.Contains(t, out, "encode")
	assert.Contains(t, out, "decode")
}

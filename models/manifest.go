package models

import "time"

// BundleManifest summarizes an encoder run. It is written next to the
// bundle and published with it, so the reveal pipeline can check every
// record against its digest before decrypting.
type BundleManifest struct {
	PasscodeHash  string          `json:"passcode_hash"`
	KDFIterations int             `json:"kdf_iterations"`
	Assets        []ManifestAsset `json:"assets"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// ManifestAsset describes one encrypted asset of the bundle.
type ManifestAsset struct {
	Kind       AssetKind `json:"kind"`
	FileName   string    `json:"file_name"`
	Source     string    `json:"source,omitempty"`
	PlainSize  int       `json:"plain_size"`
	RecordSize int       `json:"record_size"`
	// RecordSHA256 is the hex digest of the record file, so a deployed
	// bundle can be checked against the encoder output.
	RecordSHA256 string `json:"record_sha256"`
}

// RecordDigests maps each listed asset to its record digest. Assets without
// a digest are left out.
func (m BundleManifest) RecordDigests() map[AssetKind]string {
	digests := make(map[AssetKind]string, len(m.Assets))
	for _, a := range m.Assets {
		if a.RecordSHA256 != "" {
			digests[a.Kind] = a.RecordSHA256
		}
	}
	return digests
}

// Published returns a copy of m without the local source paths, which
// describe the encoding machine and are not served.
func (m BundleManifest) Published() BundleManifest {
	out := m
	out.Assets = make([]ManifestAsset, len(m.Assets))
	for i, a := range m.Assets {
		a.Source = ""
		out.Assets[i] = a
	}
	return out
}

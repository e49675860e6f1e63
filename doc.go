// Package mp4meta reads and writes iTunes metadata in MPEG-4 audio files.
//
// Metadata lives in the item list at moov > udta > meta > ilst. Each item is
// identified by a four character code such as ©nam or trkn, or by a freeform
// mean and name pair, and wraps one typed data atom.
//
// # Quick Start
//
// Reading metadata:
//
//	tag, err := mp4meta.ReadFile("song.m4a")
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, _ := tag.Title()
//	artist, _ := tag.Artist()
//	fmt.Printf("%s - %s\n", artist, title)
//
// Writing metadata:
//
//	tag.SetTitle("New Title")
//	tag.SetTrackNumber(3, 12)
//	if err := tag.Save(mp4meta.WithBackup(".bak")); err != nil {
//		log.Fatal(err)
//	}
//
// # Graceful Degradation
//
// Items whose value cannot be decoded are left absent and reported in
// Tag.Warnings instead of failing the read. Items with an unknown type code
// keep their raw bytes and are written back unchanged. Structural problems,
// such as an atom longer than its parent, are returned as typed errors:
//
//	tag, err := mp4meta.ReadFile(path)
//	var noTag *mp4meta.NoTagError
//	if errors.As(err, &noTag) {
//		fmt.Printf("not an audio file: brand %q\n", noTag.Brand)
//	}
//
// # Saving
//
// Save rewrites only the item list. Items that were not touched are copied
// byte for byte, the lengths of the enclosing atoms are patched and chunk
// offsets are shifted when the sample data follows the movie atom. The new
// file is written to a temporary file and renamed into place.
//
// # Concurrency
//
// A Tag is not safe for concurrent use. ReadMany reads several files in
// parallel:
//
//	tags, err := mp4meta.ReadMany(ctx, paths...)
package mp4meta

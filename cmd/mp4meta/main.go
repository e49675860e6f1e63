// Command mp4meta inspects and edits iTunes metadata in MPEG-4 audio files.
//
// Usage:
//
//	mp4meta dump song.m4a
//	mp4meta tags song.m4a other.m4b
//	mp4meta set song.m4a --title "New Title" --set "----:com.apple.iTunes:MOOD=calm"
//
// Settings are read from mp4meta.yaml in the working directory or
// $HOME/.config/mp4meta, and from MP4META_* environment variables.
package main

func main() {
	Execute()
}

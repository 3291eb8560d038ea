// Package file provides the file-based settings loader.
//
// Settings files are YAML (.yaml, .yml) or TOML (.toml). Both formats share
// the same keys:
//
//	cloud:
//	  provider: aws          # aws | gcp | azure
//	  bucket: my-bucket
//	  prefix: experiments/amharic
//	cleaning:
//	  normalize_numerals: true
//	  strategy: ethiopic
//	model:
//	  min_df: 2
//	runs:
//	  db_dir: ~/.cleanhub/data
package file

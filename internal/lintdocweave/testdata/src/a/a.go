// Package a exercises the docweave directive checks.
package a

//go:generate docweave extract apple.rs

//go:generate docweave combine apple.rs sub/fruit.rs

//go:generate docweave combine --base sub fruit.rs

//go:generate docweave combine

//go:generate docweave generate --config docs.yml

//go:generate stringer -type=Kind

/* want `docweave source missing\.rs does not exist` */ //go:generate docweave extract missing.rs

/* want `docweave source empty\.rs contributes no documentation` */ //go:generate docweave extract empty.rs

/* want `docweave source broken\.rs: line 1: unterminated block comment` */ //go:generate docweave combine --strict apple.rs broken.rs

/* want `docweave directive is missing a subcommand` */ //go:generate docweave

/* want `unknown docweave subcommand "weave"` */ //go:generate docweave weave apple.rs

/* want `docweave extract takes exactly one source file, got 0` */ //go:generate docweave extract --strict

/* want `docweave extract takes exactly one source file, got 2` */ //go:generate docweave extract apple.rs empty.rs

/* want `docweave manifest \.docweave\.yml does not exist` */ //go:generate docweave generate

/* want `docweave manifest other\.yml does not exist` */ //go:generate docweave generate --config other.yml

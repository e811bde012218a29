// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/confkit/internal/meta"
)

const bashCompletionScript = `# bash completion for confkit
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_confkit()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local global="--file -f --passphrase -p"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "clean diff get list ls reset set show completion $global --help --version" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--file" || "$prev" == "-f" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "json yaml raw" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    case "$cmd" in
        list|ls)
            local opts="$global --color -c --filter --padding --sort -s --titles -t"
            ;;
        show)
            local opts="$global --color -c --output -o"
            ;;
        diff)
            local opts="$global --color -c --ignore"
            ;;
        reset)
            local opts="$global --yes -y"
            ;;
        set)
            local opts="$global --strict"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$global"
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _confkit confkit
`

const zshCompletionScript = `#compdef confkit

_confkit() {
  local -a cmds
  cmds=(
    'clean:rewrite the file without unknown or invalid entries'
    'diff:compare current values with the defaults'
    'get:print one value'
    'list:list fields with their type, value and hint'
    'reset:reset every field to its default'
    'set:set fields from key=value pairs'
    'show:print the saved configuration'
    'completion:generate shell completion script'
  )

  local -a global
  global=(
  '(-f --file)'{-f,--file}'[configuration file]:file:_files'
  '(-p --passphrase)'{-p,--passphrase}'[passphrase]:passphrase'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'confkit commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    list|ls)
      _arguments -C \
        $global \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--filter[row filters]:filters' \
        '--padding[spaces between columns]:padding' \
        '(-s --sort)'{-s,--sort}'[sort columns]:columns' \
        '(-t --titles)'{-t,--titles}'[show titles]'
      ;;
    show)
      _arguments -C \
        $global \
        '(-c --color)'{-c,--color}'[enable colored JSON]' \
        '(-o --output)'{-o,--output}'[output format]:format:(json yaml raw)' \
        '::path'
      ;;
    diff)
      _arguments -C \
        $global \
        '(-c --color)'{-c,--color}'[enable colored diff]' \
        '--ignore[fields to leave out]:fields'
      ;;
    reset)
      _arguments -C $global '(-y --yes)'{-y,--yes}'[do not ask]'
      ;;
    set)
      _arguments -C $global '--strict[fail on any invalid value]' '*:key=value'
      ;;
    get)
      _arguments -C $global ':path'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $global
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _confkit confkit
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(errWriter(cmd), "usage: "+BinaryName+" completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: BinaryName + " completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}

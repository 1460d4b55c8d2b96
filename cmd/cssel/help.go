package main

const buildHelp = `
ARG:
    selector part as kind=value or a combinator

    kinds in the order they must appear within one compound:
        element, id, class, attr, pseudoClass, pseudoElement
    element, id and pseudoElement are allowed once per compound

    combinator: ">", "+", "~" or descendant, child, next-sibling,
    subsequent-sibling; it closes current compound and starts next one
    any other word is used as combinator text unless selector.combinators
    is set to strict

EXAMPLE:
    cssel build element=table id=data child element=tr 'pseudoClass=nth-of-type(even)'
    table#data > tr:nth-of-type(even)
`

const renderHelp = `
SOURCE:
    recipe file (.yaml, .yml or .json), directory with recipes (searched
    recursively) or zip archive with recipes

DESTINATION:
    directory for stylesheets, one per recipe named after recipe name
    (or recipe file name), clashing names get numeric suffix
    if absent - STDOUT

With selector.verify enabled every stylesheet is parsed back before it is
written and must contain all rules and property values of its recipe.
`

const dumpconfigHelp = `
DESTINATION:
    file to write configuration to, if absent - STDOUT

Without --default writes configuration in effect: embedded defaults
overridden by --config file.
`

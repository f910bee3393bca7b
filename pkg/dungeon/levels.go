package dungeon

// builtinLevels - встроенные уровни в ASCII-раскладке (см. ParseASCII).
var builtinLevels = map[string]string{
	"crossroads": crossroadsLayout,
	"bats":       batsLayout,
	"slimes":     slimesLayout,
	"skeletons":  skeletonsLayout,
	"mix":        mixLayout,
	"corridor":   corridorLayout,
}

const crossroadsLayout = `
            # # # #
           # . . . #
          # . . . . #
   # # # # . . . . . # # # #
  # . . . + . . . . + . . . #
 # . . . . # . . . # . . . . #
# . . @ . . # # # # . . . . . #
 # . . . . # . . . # . . . . #
  # . . . # . . . . # . . . #
   # + # # . . . . . # # + #
  # . . . + . . . . # . . . #
 # . . . . # . . . # . . . . #
# . . . . . # # # # . . . . . #
 # . . . . # . . . # . . . . #
  # . . . + . . . . + . . . #
   # # # # . . . . . # # # #
          # . . . . #
           # . . . #
            # # # #
`

const batsLayout = `
            # # # #
           # . . . #
          # . . . . #
   # # # # . . B . . # # # #
  # . . . \ . . . . / . . . #
 # . . . . # . . . # . B . . #
# . . @ . . # # # # . . . . . #
 # . . . . # . . . # . . B . #
  # . . . # . . . . # . . . #
   # - # # . . b . . # # - #
  # . . . \ . . . . # . . . #
 # . . . . # . . . # . . B . #
# . . b . . # # # # . b . . . #
 # . . . . # . . . # . . B . #
  # . . . / . b . . \ . . . #
   # # # # . . . . . # # # #
          # . . b . #
           # . . . #
            # # # #
`

const slimesLayout = `
       # # # # # # # # # # # # #
      # . . . . . . . . . . . . #
     # . . . . . s . . . . . . . #
    # . . . s . . . . . . s . . . #
   # . . . . . . . . s . . . . . . #
  # . . @ . . . s . . . . . s . . . #
   # . . . . . . . . s . . . . . . #
    # . . . s . . . . . . s . . . #
     # . . . . . s . . . . . . . #
      # . . . . . . . . . . . . #
       # # # # # # # # # # # # #
`

const skeletonsLayout = `
       # # # # # # # # # # # # #
      # . . . . . . . . . . . . #
     # . @ . . . . . . k . . . #
      # . . . # . . . . . # . . #
       # . . # # . k . . # # . . #
      # . . . . . . . . . . . . #
     # . . . . . . # # . . k . #
      # . k . . . # # . . . . . #
       # . . # . . . . . # # . . #
      # . . # # . k . . . # . . #
     # . k . . . . . . k . . . #
      # . . . . . . . . . . . . #
       # # # # # # # # # # # # #
`

const mixLayout = `
       # # # # # # # # # # # # # #
      # . # . . . . . # . . . . . #
     # . . # . g . . . # . . b . . #
    # . . . \ . . . . . # . . . . . #
   # . . . . # . . s . . \ . k . k . #
  # . @ . . . # . . . . . # . . . . . #
   # . . . . # # # # - # # # # - # # #
    # . . . / . . . . . . . . . . . #
     # . . # . . s . . . s . . . . #
      # . # b . . . b . . . k . . #
       # # . . s . . . s . . g . #
        # . . . . . . . . . . . #
       # # # - # # # # # - # # #
      # . . . . . . . . . . . #
     # . b . . . . . . . k . #
    # . . s . . s . . s . . #
   # . k . . . . . . . b . #
  # . . . . . . . . g . . #
   # # # # # # # # # # # #
`

const corridorLayout = `
  # # # # # # # # # #
 # @ . . . . . . - k #
  # # # # # # # # # #
`

// Package drt holds design rule tables: the named geometric constants of
// one fabrication process, together with its layer map and device models.
//
// Tables are registered once, by name, and are read-only afterwards. The
// built-in "gf180mcu" table is always registered:
//
//	rules, err := drt.Lookup(drt.Default)
//	if err != nil {
//	    // unknown process
//	}
//
// Additional processes are added with [Register], either from code or from
// a YAML file decoded with [Load]:
//
//	f, _ := os.Open("myprocess.yaml")
//	rules, err := drt.Load(f)
//	if err == nil {
//	    drt.Register(rules)
//	}
//
// All lengths are in microns.
package drt

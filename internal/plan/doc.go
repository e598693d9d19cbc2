// Package plan turns caller-supplied intended destinations into final,
// collision-free filesystem paths.
//
// The planner never touches the filesystem: existence is checked through an
// injected stat oracle plus the set of paths already claimed by earlier plans
// in the same run, which is what makes dry runs a faithful preview of real
// runs.
package plan

// Package universe implements the gravitational engine: bodies under mutual
// Newtonian gravity, the integration step, frame centering and the run
// controls a driver forwards to the simulation.
//
//   - [Body]: point mass with position, velocity and display attributes
//   - [Universe]: ordered body registry, simulated clock and view selection
//   - [Mode]: selectable update scheme (naive, no-gravity, rk4)
//
// # Units
//
// Distances are in Earth radii (see package units), time in seconds and
// mass in kilograms. The gravitational constant is applied in SI form to
// distances in Earth radii; this convention defines the simulated dynamics
// and must not be "corrected" by converting to meters before the force
// computation.
//
// # Example
//
//	earth, _ := universe.NewBody("Earth", 5.9736e24, vec.Zero, vec.Zero)
//	moon, _ := universe.NewBody("Moon", 7.3483e22, vec.New(0, 57.02, 0), vec.New(1.69e-4, 0, 0))
//	u := universe.New()
//	_ = u.Add(earth, moon)
//	u.Update(1)
//	fmt.Println(u)
//
// # Thread Safety
//
// A Universe is owned by a single driver and is NOT safe for concurrent use.
// [WithWorkers] parallelises the acceleration phase of a step internally; the
// step itself still runs to completion before returning.
package universe

// Copyright 2025 The file-signing Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashengines

import (
	"fmt"
	"sort"
	"sync"
)

// EngineFactory creates a fresh engine instance. For keyed algorithms the key
// is bound at construction (standard HMAC keying); unkeyed factories must
// reject a non-nil key so salt and key material cannot be conflated.
type EngineFactory func(key []byte) (StreamingHashEngine, error)

var (
	registry = make(map[Algorithm]EngineFactory)
	mu       sync.RWMutex
)

// Register registers a factory for the given algorithm.
//
// Returns an error if the algorithm already has a factory. Concrete engine
// packages register themselves on import, which keeps this package free of
// dependencies on the implementations.
func Register(algorithm Algorithm, factory EngineFactory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}

	registry[algorithm] = factory
	return nil
}

// MustRegister registers a factory or panics. Registration failure during
// package init indicates a programming error that should surface immediately.
func MustRegister(algorithm Algorithm, factory EngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create returns a fresh, ready-to-use engine for the given algorithm.
//
// An unknown or empty algorithm falls back to the documented default:
// sha512 when key is nil, hmac-sha512 when a key is supplied. The fallback
// is a deliberate default-safe policy, not an error. Every call produces a
// new primitive instance; nothing is shared between engines.
func Create(algorithm Algorithm, key []byte) (StreamingHashEngine, error) {
	algorithm = normalize(algorithm, key != nil)

	mu.RLock()
	factory, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("no engine registered for algorithm %q (registered: %v)",
			algorithm, RegisteredAlgorithms())
	}

	engine, err := factory(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %q: %w", algorithm, err)
	}
	return engine, nil
}

// normalize resolves unknown algorithms to the defaults and, when a key is
// present, promotes an unkeyed algorithm to its HMAC form.
func normalize(algorithm Algorithm, keyed bool) Algorithm {
	if !algorithm.Valid() {
		if keyed || algorithm.Keyed() {
			return DefaultKeyed
		}
		return DefaultUnkeyed
	}
	if keyed {
		return algorithm.ToKeyed()
	}
	return algorithm
}

// RegisteredAlgorithms returns a sorted list of algorithms with factories.
func RegisteredAlgorithms() []Algorithm {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]Algorithm, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Slice(algorithms, func(i, j int) bool { return algorithms[i] < algorithms[j] })
	return algorithms
}

// IsRegistered checks whether an algorithm has a factory.
func IsRegistered(algorithm Algorithm) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}

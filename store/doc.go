// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store implements the in-memory dictionary entry store.
//
// A Store is built once from a decoded dataset and never modified. Datasets
// are read from a [Source], either synchronously or with a [Loader] that
// performs a single asynchronous load and reports its progress as a state
// machine: Idle, Loading, then Ready or Failed.
package store

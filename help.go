// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func usageMarkdown() string {
	return fmt.Sprintf(`

 **avltree %s**

Insert values into a self-balancing AVL tree and watch it rebalance.
Every insert keeps the two subtrees of each node within one level of each other.

Built with Go %s

# 1. Commands
* **run**: interactive tree editor (default when no command is given)
* **insert**: build a tree from values and print its traversals
* **demo**: replay the classic demonstration sequence
* **bench**: insert thousands of values and check the height bound
* **settings**: show or create ~/.avltree.yaml

# 2. Value kinds
* **int**: 64 bit integers
* **float**: 64 bit floats (NaN is refused, it has no order)
* **string**: anything else, compared byte by byte
* **auto**: pick the narrowest kind that accepts every value

# 3. Traversals
* **inorder**: left, root, right (sorted)
* **preorder**: root, left, right
* **postorder**: left, right, root

# 4. Interactive keys
* **Enter**: insert the values typed in the input
* **Tab**: cycle the traversal order
* **Ctrl+Y**: copy the traversal to the clipboard
* **Ctrl+R**: start over with an empty tree
* **F1**: toggle this help
* **Esc / Ctrl+C**: quit

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}

package cachedir

// DefaultPrelude is written to the prelude file when the layout is first created.
// Users edit the file afterwards; it is never rewritten.
const DefaultPrelude = `#![allow(unused_imports)]
#![allow(unused_variables)]
#![allow(dead_code)]
#![allow(unused_macros)]
use std::{fs, io, env};
use std::fs::File;
use std::io::prelude::*;
use std::path::{PathBuf, Path};
use std::collections::HashMap;
use std::time::Duration;
use std::thread;

macro_rules! debug {
    ($x:expr) => {
        println!("{} = {:?}", stringify!($x), $x);
    }
}
`
